package http

import nethttp "net/http"

func dashboardHandler(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.URL.Path != "/" {
		nethttp.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(nethttp.StatusOK)
	_, _ = w.Write([]byte(dashboardHTML))
}

func faviconHandler(w nethttp.ResponseWriter, _ *nethttp.Request) {
	w.WriteHeader(nethttp.StatusNoContent)
}

const dashboardHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Admission Analytics Dashboard</title>
  <style>
    :root {
      --bg: #f1f5f9;
      --paper: #fff;
      --text: #0f172a;
      --muted: #475569;
      --line: #e2e8f0;
      --bar: #1e3a8a;
      --trend: #f59e0b;
      --high: #dc2626;
      --medium: #f97316;
      --low: #059669;
    }

    * { box-sizing: border-box; }

    body {
      margin: 0;
      background: linear-gradient(to bottom, #f8fafc, var(--bg));
      color: var(--text);
      font-family: "Helvetica Neue", Helvetica, Arial, sans-serif;
      font-size: 14px;
      min-height: 100vh;
    }

    header {
      position: sticky;
      top: 0;
      z-index: 10;
      background: rgba(255, 255, 255, 0.85);
      border-bottom: 1px solid var(--line);
      backdrop-filter: blur(6px);
    }

    .container { max-width: 1280px; margin: 0 auto; padding: 16px; }

    .header-inner {
      display: flex;
      flex-wrap: wrap;
      gap: 12px;
      align-items: flex-end;
      justify-content: space-between;
    }

    h1 { margin: 0; font-size: 26px; font-weight: 800; letter-spacing: -0.5px; }
    h2 { margin: 0 0 12px; font-size: 16px; font-weight: 600; }
    .subtitle { margin: 2px 0 0; color: var(--muted); }

    .controls { display: flex; gap: 8px; align-items: flex-end; }
    .controls label { display: block; font-size: 12px; color: var(--muted); margin-bottom: 2px; }
    .controls input { padding: 6px 8px; border: 1px solid var(--line); border-radius: 6px; }

    button {
      padding: 8px 14px;
      border: 0;
      border-radius: 6px;
      background: var(--bar);
      color: #fff;
      font-weight: 600;
      cursor: pointer;
    }
    button:disabled { opacity: 0.6; cursor: default; }

    .grid { display: grid; gap: 16px; margin-bottom: 16px; }
    .cards { grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); }
    .charts { grid-template-columns: 3fr 2fr; }
    @media (max-width: 960px) { .charts { grid-template-columns: 1fr; } }

    .panel {
      background: var(--paper);
      border: 1px solid var(--line);
      border-radius: 10px;
      box-shadow: 0 1px 2px rgba(0, 0, 0, 0.04);
      padding: 16px;
    }

    .card-title { color: var(--muted); font-size: 13px; font-weight: 500; }
    .card-value { font-size: 30px; font-weight: 800; letter-spacing: -0.5px; margin-top: 6px; }
    .tier-high { color: var(--high); }
    .tier-medium { color: var(--medium); }
    .tier-low { color: var(--low); }

    .placeholder { display: grid; place-items: center; min-height: 160px; color: var(--muted); }
    .error { border-color: #fecaca; background: #fef2f2; color: #b91c1c; }
    .error small { display: block; margin-top: 4px; color: #dc2626; }
    .hidden { display: none; }

    svg { width: 100%; height: 320px; }
    svg text { font-size: 11px; fill: var(--muted); }

    table { width: 100%; border-collapse: collapse; }
    th, td { padding: 8px; border-bottom: 1px solid var(--line); text-align: left; }
    th:last-child, td:last-child { text-align: right; }
    td.num { font-weight: 600; }
  </style>
</head>
<body>
  <header>
    <div class="container header-inner">
      <div>
        <h1>Admission Analytics Dashboard</h1>
        <p class="subtitle">University Admin Portal</p>
      </div>
      <div class="controls">
        <div><label for="from">From</label><input id="from" type="date" /></div>
        <div><label for="to">To</label><input id="to" type="date" /></div>
        <button id="refresh" type="button">Refresh</button>
      </div>
    </div>
  </header>

  <main class="container">
    <div id="loading" class="placeholder hidden">Loading analytics…</div>
    <div id="error" class="panel error hidden">
      <div id="error-text"></div>
      <small>Use the refresh button to try again.</small>
    </div>

    <div id="content" class="hidden">
      <section class="grid cards">
        <div class="panel"><div class="card-title">Total Applicants</div><div id="card-total" class="card-value">-</div></div>
        <div class="panel"><div class="card-title">Verified Applicants</div><div id="card-verified" class="card-value">-</div></div>
        <div class="panel"><div class="card-title">Rejected Applicants</div><div id="card-rejected" class="card-value">-</div></div>
      </section>

      <section class="grid charts">
        <div class="panel"><h2>Applications per Program</h2><div id="bar-chart"></div></div>
        <div class="panel"><h2>Application Trends</h2><div id="line-chart"></div></div>
      </section>

      <section class="panel">
        <h2>Programs Summary</h2>
        <div id="program-table"></div>
      </section>
    </div>
  </main>

  <script>
    const API = "/api/v1/analytics/admissions";
    const FETCH_FAILED = "Failed to fetch analytics";
    const SVG_NS = "http://www.w3.org/2000/svg";

    // phase: idle | loading | loaded | failed. snapshot survives failures.
    const state = { phase: "idle", snapshot: null, error: "", seq: 0, from: "", to: "" };

    function tier(v) {
      if (v > 1000) return "tier-high";
      if (v > 500) return "tier-medium";
      return "tier-low";
    }

    function fmt(v) {
      return typeof v === "number" ? v.toLocaleString() : "-";
    }

    function filterTrends(trends, from, to) {
      const fromDate = from ? new Date(from) : null;
      const toDate = to ? new Date(to) : null;
      return (trends || []).filter((t) => {
        const d = new Date(t.date);
        if (fromDate && !isNaN(fromDate) && d < fromDate) return false;
        if (toDate && !isNaN(toDate)) {
          const end = new Date(toDate.getTime() + 86400000 - 1);
          if (d > end) return false;
        }
        return true;
      });
    }

    async function load() {
      const seq = ++state.seq;
      state.phase = "loading";
      state.error = "";
      render();
      try {
        const resp = await fetch(API, { headers: { Accept: "application/json" } });
        if (!resp.ok) throw new Error("HTTP " + resp.status);
        const data = await resp.json();
        if (seq !== state.seq) return;
        state.snapshot = data;
        state.phase = "loaded";
      } catch (e) {
        if (seq !== state.seq) return;
        state.phase = "failed";
        state.error = FETCH_FAILED;
      }
      render();
    }

    function el(tag, attrs, text) {
      const node = document.createElementNS(SVG_NS, tag);
      for (const k in attrs) node.setAttribute(k, attrs[k]);
      if (text !== undefined) node.textContent = text;
      return node;
    }

    function placeholder(target, text) {
      target.innerHTML = "";
      const div = document.createElement("div");
      div.className = "placeholder";
      div.textContent = text;
      target.appendChild(div);
    }

    function drawBars(target, rows) {
      if (!rows || !rows.length) return placeholder(target, "No data available");
      const W = 600, H = 320, padL = 48, padB = 70, padT = 10;
      const max = Math.max(...rows.map((r) => r.applications), 1);
      const slot = (W - padL) / rows.length;
      const svg = el("svg", { viewBox: "0 0 " + W + " " + H, preserveAspectRatio: "none" });
      for (let i = 0; i <= 4; i++) {
        const y = padT + (H - padB - padT) * (i / 4);
        svg.appendChild(el("line", { x1: padL, x2: W, y1: y, y2: y, stroke: "#e5e7eb", "stroke-dasharray": "3 3" }));
        svg.appendChild(el("text", { x: padL - 6, y: y + 4, "text-anchor": "end" }, Math.round(max * (1 - i / 4)).toLocaleString()));
      }
      rows.forEach((r, i) => {
        const h = (H - padB - padT) * (r.applications / max);
        const x = padL + i * slot + slot * 0.15;
        const bar = el("rect", { x: x, y: H - padB - h, width: slot * 0.7, height: h, rx: 6, fill: "#1E3A8A" });
        bar.appendChild(el("title", {}, r.program + ": " + r.applications.toLocaleString()));
        svg.appendChild(bar);
        const lx = x + slot * 0.35, ly = H - padB + 14;
        svg.appendChild(el("text", { x: lx, y: ly, "text-anchor": "end", transform: "rotate(-20 " + lx + " " + ly + ")" }, r.program));
      });
      target.innerHTML = "";
      target.appendChild(svg);
    }

    function drawLine(target, points) {
      if (!points.length) return placeholder(target, "No data in selected range");
      const W = 420, H = 320, padL = 36, padB = 30, padT = 10;
      const values = points.map((p) => p.applications);
      const max = Math.max(...values), min = Math.min(...values, 0);
      const span = Math.max(max - min, 1);
      const step = points.length > 1 ? (W - padL - 8) / (points.length - 1) : 0;
      const svg = el("svg", { viewBox: "0 0 " + W + " " + H, preserveAspectRatio: "none" });
      for (let i = 0; i <= 4; i++) {
        const y = padT + (H - padB - padT) * (i / 4);
        svg.appendChild(el("line", { x1: padL, x2: W, y1: y, y2: y, stroke: "#e5e7eb", "stroke-dasharray": "3 3" }));
        svg.appendChild(el("text", { x: padL - 4, y: y + 4, "text-anchor": "end" }, Math.round(max - span * (i / 4))));
      }
      const coords = points.map((p, i) => {
        const x = padL + i * step;
        const y = padT + (H - padB - padT) * (1 - (p.applications - min) / span);
        return x + "," + y;
      });
      svg.appendChild(el("polyline", { points: coords.join(" "), fill: "none", stroke: "#F59E0B", "stroke-width": 2 }));
      const labelEvery = Math.max(1, Math.ceil(points.length / 6));
      points.forEach((p, i) => {
        if (i % labelEvery === 0 || i === points.length - 1) {
          svg.appendChild(el("text", { x: padL + i * step, y: H - 10, "text-anchor": "middle" }, p.date.slice(5)));
        }
      });
      target.innerHTML = "";
      target.appendChild(svg);
    }

    function drawTable(target, rows) {
      if (!rows || !rows.length) return placeholder(target, "No data available");
      const table = document.createElement("table");
      table.innerHTML = "<thead><tr><th>Program</th><th>Applicants</th></tr></thead>";
      const body = document.createElement("tbody");
      rows.forEach((r) => {
        const tr = document.createElement("tr");
        const name = document.createElement("td");
        name.textContent = r.program;
        const num = document.createElement("td");
        num.className = "num " + tier(r.applications);
        num.textContent = r.applications.toLocaleString();
        tr.append(name, num);
        body.appendChild(tr);
      });
      table.appendChild(body);
      target.innerHTML = "";
      target.appendChild(table);
    }

    function setCard(id, value) {
      const node = document.getElementById(id);
      node.textContent = fmt(value);
      node.className = "card-value " + tier(value);
    }

    function render() {
      const loading = state.phase === "loading";
      const btn = document.getElementById("refresh");
      btn.disabled = loading;
      btn.textContent = loading ? "Refreshing..." : "Refresh";

      document.getElementById("loading").classList.toggle("hidden", !(loading && !state.snapshot));
      document.getElementById("error").classList.toggle("hidden", !state.error);
      document.getElementById("error-text").textContent = state.error;

      const data = state.snapshot;
      document.getElementById("content").classList.toggle("hidden", !data);
      if (!data) return;

      setCard("card-total", data.totalApplicants);
      setCard("card-verified", data.verifiedApplicants);
      setCard("card-rejected", data.rejectedApplicants);
      drawBars(document.getElementById("bar-chart"), data.perProgram);
      drawLine(document.getElementById("line-chart"), filterTrends(data.trends, state.from, state.to));
      drawTable(document.getElementById("program-table"), data.perProgram);
    }

    document.getElementById("refresh").addEventListener("click", load);
    document.getElementById("from").addEventListener("change", (e) => { state.from = e.target.value; render(); });
    document.getElementById("to").addEventListener("change", (e) => { state.to = e.target.value; render(); });

    load();
  </script>
</body>
</html>
`
