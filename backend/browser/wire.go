package browser

// patch is one DOM mutation pushed to the page. Ops:
//
//	append     - insert Markup into the svg root
//	update     - set Attrs/Style on the element ID (empty value removes)
//	text       - set the character data (or input value) of ID to Value
//	remove     - delete the element ID
//	title      - set the document title to Value
//	background - set the svg background to Value
type patch struct {
	Op     string            `json:"op"`
	ID     string            `json:"id,omitempty"`
	Markup string            `json:"markup,omitempty"`
	Attrs  map[string]string `json:"attrs,omitempty"`
	Style  map[string]string `json:"style,omitempty"`
	Value  string            `json:"value,omitempty"`
}

// clientEvent is one input event sent by the page. Events:
//
//	ready - the page shell finished initializing
//	click - mouse click at X,Y in svg pixel coordinates
//	key   - key press, name in Key
//	input - embedded input ID changed to Value
type clientEvent struct {
	Event string `json:"event"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Key   string `json:"key,omitempty"`
	ID    string `json:"id,omitempty"`
	Value string `json:"value,omitempty"`
}
