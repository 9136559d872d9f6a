package renderer

// Static presentation assets embedded into every document so the output is
// fully self-contained: no external stylesheet, font, or script references.

const docStyle = `:root {
  --fg: #24292f;
  --muted: #57606a;
  --border: #d0d7de;
  --bg-subtle: #f6f8fa;
  --accent: #0969da;
}
* { box-sizing: border-box; }
body {
  margin: 0 auto;
  max-width: 60rem;
  padding: 0 1.5rem 4rem;
  color: var(--fg);
  font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif;
  line-height: 1.5;
}
h1, h2, h3, h4, h5, h6 { line-height: 1.25; }
h1 { font-size: 2rem; margin-bottom: 0.25rem; }
a { color: var(--accent); text-decoration: none; }
a:hover { text-decoration: underline; }
code {
  font-family: ui-monospace, SFMono-Regular, Consolas, monospace;
  font-size: 85%;
  background: var(--bg-subtle);
  border-radius: 4px;
  padding: 0.15em 0.35em;
}
pre {
  background: var(--bg-subtle);
  border: 1px solid var(--border);
  border-radius: 6px;
  padding: 0.75rem;
  overflow-x: auto;
  margin: 0.5rem 0;
}
pre code { background: none; padding: 0; font-size: 85%; }
table {
  border-collapse: collapse;
  width: 100%;
  margin: 0.5rem 0 1rem;
}
th, td {
  border: 1px solid var(--border);
  padding: 0.35rem 0.65rem;
  text-align: left;
  font-size: 0.9rem;
}
th { background: var(--bg-subtle); }
.page-header { padding: 2rem 0 1rem; border-bottom: 1px solid var(--border); }
.generated { color: var(--muted); font-size: 0.85rem; margin: 0; }
.text-muted { color: var(--muted); font-style: italic; }
.toc { margin: 1.5rem 0; }
.toc ul { list-style: none; padding-left: 1.1rem; margin: 0.2rem 0; }
.toc > ul { padding-left: 0; }
.toc-folder > a { font-weight: 600; }
.divided { border-top: 2px solid var(--border); padding-top: 1rem; margin-top: 2.5rem; }
.folder-title { margin-bottom: 0.25rem; }
.endpoint { margin: 1.5rem 0; }
.endpoint-url { margin: 0.5rem 0; }
.block-title { font-weight: 600; margin: 1rem 0 0.25rem; }
.content-type { color: var(--muted); font-size: 0.85rem; margin-bottom: 0.25rem; }
.no-request { color: var(--muted); font-style: italic; }
.method {
  display: inline-block;
  min-width: 3.5rem;
  text-align: center;
  padding: 0.1rem 0.5rem;
  border-radius: 4px;
  color: #fff;
  font-size: 0.8rem;
  font-weight: 700;
}
.method.get { background: #1a7f37; }
.method.post { background: #9a6700; }
.method.put { background: #0969da; }
.method.patch { background: #8250df; }
.method.delete { background: #cf222e; }
.method.head, .method.options { background: #57606a; }
.code-collapsed { position: relative; max-height: 16rem; overflow: hidden; }
.code-collapsed.expanded { max-height: none; }
.code-collapsed .code-fade {
  position: absolute;
  bottom: 0;
  left: 0;
  right: 0;
  height: 3rem;
  background: linear-gradient(rgba(246, 248, 250, 0), var(--bg-subtle));
}
.code-collapsed.expanded .code-fade { display: none; }
.code-toggle {
  border: 1px solid var(--border);
  background: var(--bg-subtle);
  border-radius: 4px;
  padding: 0.2rem 0.75rem;
  font-size: 0.8rem;
  cursor: pointer;
}
.code-toggle:hover { background: #eaeef2; }
`

const docScript = `document.addEventListener('click', function (ev) {
  var btn = ev.target.closest('.code-toggle');
  if (!btn) return;
  var target = document.getElementById(btn.getAttribute('data-target'));
  if (!target) return;
  var expanded = target.classList.toggle('expanded');
  btn.textContent = expanded
    ? btn.getAttribute('data-collapse')
    : btn.getAttribute('data-show');
});
`
