package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const consoleHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>NovaPay Fraud Score</title>
    <meta name="description" content="Transaction fraud scoring console">
    <link rel="icon" href="data:image/svg+xml,<svg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 100 100'><text y='.9em' font-size='90'>🛡</text></svg>">
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }

        :root {
            --bg: #09090b;
            --bg-subtle: #18181b;
            --border: #27272a;
            --text: #fafafa;
            --text-secondary: #a1a1aa;
            --accent: #3b82f6;
        }

        body {
            font-family: 'Inter', -apple-system, sans-serif;
            background: var(--bg);
            color: var(--text);
            min-height: 100vh;
            font-size: 14px;
            line-height: 1.5;
            -webkit-font-smoothing: antialiased;
        }

        .container { max-width: 960px; margin: 0 auto; padding: 32px 16px; }

        h1 { font-size: 20px; font-weight: 600; margin-bottom: 4px; }
        .subtitle { color: var(--text-secondary); margin-bottom: 24px; }

        .grid { display: grid; grid-template-columns: 1fr 1fr; gap: 24px; }
        @media (max-width: 720px) { .grid { grid-template-columns: 1fr; } }

        .card {
            background: var(--bg-subtle);
            border: 1px solid var(--border);
            border-radius: 8px;
            padding: 20px;
        }

        label { display: block; color: var(--text-secondary); font-size: 12px; margin: 10px 0 2px; }
        input, select {
            width: 100%; padding: 6px 8px; border-radius: 6px;
            border: 1px solid var(--border); background: var(--bg); color: var(--text);
        }

        button {
            margin-top: 16px; width: 100%; padding: 10px;
            background: var(--accent); color: white; border: none;
            border-radius: 6px; font-weight: 600; cursor: pointer;
        }
        button:hover { opacity: 0.9; }

        #verdict { display: none; margin-top: 16px; padding: 16px; border-radius: 8px; border: 1px solid var(--border); }
        #verdict .tier { font-size: 24px; font-weight: 700; }
        #verdict .prob { color: var(--text-secondary); }
        #verdict .action { margin-top: 8px; font-weight: 600; }
        #verdict .details { margin-top: 4px; color: var(--text-secondary); font-size: 13px; }

        #feed { margin-top: 24px; }
        #feed .item {
            display: flex; justify-content: space-between;
            padding: 8px 12px; border-bottom: 1px solid var(--border);
            font-family: monospace; font-size: 13px;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>NovaPay Fraud Score</h1>
        <div class="subtitle">Score a cross-border transaction against the production classifier</div>

        <div class="grid">
            <div class="card">
                <form id="txn">
                    <label>Home country</label><select name="home_country" id="home_country"></select>
                    <label>Source currency</label><select name="source_currency" id="source_currency"></select>
                    <label>Destination currency</label><select name="dest_currency" id="dest_currency"></select>
                    <label>Channel</label><select name="channel" id="channel"></select>
                    <label>IP country</label><select name="ip_country" id="ip_country"></select>
                    <label>KYC tier</label><select name="kyc_tier" id="kyc_tier"></select>
                    <label>Day</label><select name="days_only" id="days_only"></select>
                    <label>Period of day</label><select name="period_of_the_day" id="period_of_the_day"></select>
                    <label>Amount (source)</label><input name="amount_src" value="200">
                    <label>Amount (USD)</label><input name="amount_usd" value="180">
                    <label>Fee</label><input name="fee" value="4">
                    <label>Exchange rate</label><input name="exchange_rate_src_to_dest" value="1">
                    <label>IP risk score</label><input name="ip_risk_score" value="0.5">
                    <label>Account age (days)</label><input name="account_age_days" value="500">
                    <label>Device trust score</label><input name="device_trust_score" value="0.65">
                    <label>Chargebacks</label><input name="chargeback_history_count" value="0">
                    <label>Internal risk score</label><input name="risk_score_internal" value="0">
                    <label>Velocity 1h</label><input name="txn_velocity_1h" value="0">
                    <label>Velocity 24h</label><input name="txn_velocity_24h" value="0">
                    <label>Corridor risk</label><input name="corridor_risk" value="0">
                    <label>New device</label><select name="new_device"><option>false</option><option>true</option></select>
                    <label>Location mismatch</label><select name="location_mismatch"><option>false</option><option>true</option></select>
                    <button type="submit">Score transaction</button>
                </form>
            </div>

            <div class="card">
                <div id="verdict">
                    <div class="tier" id="tier"></div>
                    <div class="prob" id="prob"></div>
                    <div class="action" id="action"></div>
                    <div class="details" id="details"></div>
                </div>
                <div id="feed"><div class="subtitle">Live predictions</div></div>
            </div>
        </div>
    </div>

    <script>
        async function loadOptions() {
            const opts = await fetch('/api/options').then(r => r.json());
            const fill = (id, values) => {
                const sel = document.getElementById(id);
                values.forEach(v => {
                    const o = document.createElement('option');
                    o.textContent = v;
                    sel.appendChild(o);
                });
            };
            fill('home_country', opts.home_countries);
            fill('source_currency', opts.source_currencies);
            fill('dest_currency', opts.dest_currencies);
            fill('channel', opts.channels);
            fill('ip_country', opts.ip_countries);
            fill('kyc_tier', opts.kyc_tiers);
            fill('days_only', opts.days);
            fill('period_of_the_day', opts.periods);
        }

        document.getElementById('txn').addEventListener('submit', async (e) => {
            e.preventDefault();
            const body = Object.fromEntries(new FormData(e.target).entries());
            const res = await fetch('/predict', {
                method: 'POST',
                headers: {'Content-Type': 'application/json'},
                body: JSON.stringify(body),
            }).then(r => r.json());

            const verdict = document.getElementById('verdict');
            verdict.style.display = 'block';
            if (!res.success) {
                document.getElementById('tier').textContent = 'ERROR';
                document.getElementById('prob').textContent = res.error;
                document.getElementById('action').textContent = '';
                document.getElementById('details').textContent = '';
                return;
            }
            const tier = document.getElementById('tier');
            tier.textContent = res.recommendation.icon + ' ' + res.risk_level;
            tier.style.color = res.risk_color;
            document.getElementById('prob').textContent = 'Fraud probability: ' + res.fraud_probability + '%';
            document.getElementById('action').textContent = res.recommendation.action;
            document.getElementById('details').textContent = res.recommendation.details;
        });

        function connectFeed() {
            const proto = location.protocol === 'https:' ? 'wss' : 'ws';
            const ws = new WebSocket(proto + '://' + location.host + '/ws');
            ws.onmessage = (msg) => {
                const ev = JSON.parse(msg.data);
                if (ev.type !== 'prediction') return;
                const item = document.createElement('div');
                item.className = 'item';
                const tier = document.createElement('span');
                tier.textContent = ev.data.risk_level;
                tier.style.color = ev.data.risk_color;
                const prob = document.createElement('span');
                prob.textContent = (ev.data.fraud_probability * 100).toFixed(2) + '%';
                item.appendChild(tier);
                item.appendChild(prob);
                const feed = document.getElementById('feed');
                feed.insertBefore(item, feed.children[1] || null);
                while (feed.children.length > 21) feed.removeChild(feed.lastChild);
            };
            ws.onclose = () => setTimeout(connectFeed, 3000);
        }

        loadOptions();
        connectFeed();
    </script>
</body>
</html>`

func consoleHandler(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, consoleHTML)
}
