package browser

import "html/template"

// pageTemplate is the page shell served at "/". It builds the svg root,
// opens the websocket, applies patches, and forwards input events.
// Element markup arrives pre-rendered from the Go side; the shell only
// splices it into the document.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { margin: 0; }
#stage { margin: 50px; width: {{.Width}}px; height: {{.Height}}px; }
#stage svg { background: white; }
</style>
</head>
<body>
<div id="stage"></div>
<script>
(function () {
	"use strict";
	var svgNS = "http://www.w3.org/2000/svg";
	var stage = document.getElementById("stage");
	var svg = document.createElementNS(svgNS, "svg");
	svg.setAttribute("width", "{{.Width}}");
	svg.setAttribute("height", "{{.Height}}");
	svg.innerHTML = '<defs>' +
		'<marker id="rg-arrow" viewBox="0 0 10 10" refX="8" refY="5"' +
		' markerWidth="8" markerHeight="8" orient="auto-start-reverse">' +
		'<path d="M 0 0 L 10 5 L 0 10 z" fill="context-stroke"/>' +
		'</marker></defs>';
	stage.appendChild(svg);

	var proto = location.protocol === "https:" ? "wss://" : "ws://";
	var ws = new WebSocket(proto + location.host + "/ws");

	function send(obj) {
		if (ws.readyState === WebSocket.OPEN) {
			ws.send(JSON.stringify(obj));
		}
	}

	function apply(p) {
		var el, k;
		switch (p.op) {
		case "append":
			svg.insertAdjacentHTML("beforeend", p.markup);
			break;
		case "update":
			el = document.getElementById(p.id);
			if (!el) { return; }
			for (k in p.attrs) {
				if (p.attrs[k] === "") { el.removeAttribute(k); }
				else { el.setAttribute(k, p.attrs[k]); }
			}
			for (k in p.style) {
				if (p.style[k] === "") { el.style.removeProperty(k); }
				else { el.style.setProperty(k, p.style[k]); }
			}
			break;
		case "text":
			el = document.getElementById(p.id);
			if (!el) { return; }
			if (el.tagName === "INPUT") { el.value = p.value; }
			else { el.textContent = p.value; }
			break;
		case "remove":
			el = document.getElementById(p.id);
			if (el) { el.remove(); }
			break;
		case "title":
			document.title = p.value;
			break;
		case "background":
			svg.style.background = p.value;
			break;
		}
	}

	ws.onopen = function () { send({event: "ready"}); };
	ws.onmessage = function (m) { JSON.parse(m.data).forEach(apply); };

	svg.addEventListener("click", function (e) {
		var r = svg.getBoundingClientRect();
		send({
			event: "click",
			x: Math.round(e.clientX - r.left),
			y: Math.round(e.clientY - r.top)
		});
	});
	svg.addEventListener("input", function (e) {
		send({event: "input", id: e.target.id, value: e.target.value});
	}, true);
	document.addEventListener("keydown", function (e) {
		// Typing into an embedded input is an input edit, not key input.
		if (e.target.tagName === "INPUT") { return; }
		send({event: "key", key: e.key});
	});
})();
</script>
</body>
</html>
`))

// pageData fills pageTemplate.
type pageData struct {
	Title  string
	Width  int
	Height int
}
