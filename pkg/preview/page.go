package preview

// playgroundHTML is the inspector page. It builds a card per control as
// patches arrive and echoes interactions back as events. Styling for the
// controls themselves comes from /theme.css.
const playgroundHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>efx playground</title>
<link rel="stylesheet" href="/theme.css">
<style>
body { font-family: system-ui, sans-serif; margin: 2rem; background: #fafafa; }
.card { background: #fff; border: 1px solid #ddd; border-radius: 8px; padding: 1rem; margin-bottom: 1rem; max-width: 40rem; }
.card h2 { margin: 0 0 .5rem; font-size: 1rem; }
.meta { color: #666; font-family: monospace; font-size: .8rem; white-space: pre; }
.props { font-family: monospace; font-size: .85rem; margin: .5rem 0; }
input[type=text] { width: 100%; box-sizing: border-box; padding: .4rem; }
</style>
</head>
<body>
<h1>efx playground</h1>
<div id="controls"></div>
<script>
const cards = {};

function card(id) {
  if (cards[id]) return cards[id];
  const el = document.createElement("div");
  el.className = "card";
  el.innerHTML = '<h2>' + id + '</h2>' +
    '<input type="text" data-role="input" placeholder="type here">' +
    ' <button data-role="click">click</button>' +
    '<div class="props" data-role="props"></div>' +
    '<div class="meta" data-role="meta"></div>';
  document.getElementById("controls").appendChild(el);

  const input = el.querySelector('[data-role=input]');
  input.addEventListener("focus", () => send({control: id, type: "focus"}));
  input.addEventListener("blur", () => send({control: id, type: "blur"}));
  input.addEventListener("input", () => send({control: id, type: "input", text: input.value}));
  el.addEventListener("mouseenter", () => send({control: id, type: "hover", on: true}));
  el.addEventListener("mouseleave", () => send({control: id, type: "hover", on: false}));
  el.querySelector('[data-role=click]').addEventListener("click", () => send({control: id, type: "click"}));

  cards[id] = {el: el, props: {}, classes: [], states: []};
  return cards[id];
}

function apply(p) {
  const key = p.item ? p.control + "/" + p.item : p.control;
  const c = card(key);
  if (p.kind === "property") c.props[p.name] = p.value;
  if (p.kind === "classes") c.classes = p.value || [];
  if (p.kind === "states") c.states = p.value || [];
  render(c);
}

function render(c) {
  c.el.querySelector('[data-role=props]').textContent =
    Object.entries(c.props).map(([k, v]) => k + " = " + JSON.stringify(v)).join("\n");
  c.el.querySelector('[data-role=meta]').textContent =
    "class: " + c.classes.join(" ") + "\nstate: " + c.states.map(s => ":" + s).join("");
}

const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
ws.onmessage = (msg) => apply(JSON.parse(msg.data));
function send(ev) { if (ws.readyState === WebSocket.OPEN) ws.send(JSON.stringify(ev)); }
</script>
</body>
</html>
`
