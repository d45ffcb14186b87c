package renderer

const invoiceHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Invoice {{.InvoiceNumber}}</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 40px;
      font-family: "Helvetica Neue", Arial, sans-serif;
      color: #111827;
      background: #ffffff;
    }
    .invoice {
      max-width: 720px;
      margin: 0 auto;
    }
    .header {
      display: flex;
      justify-content: space-between;
      align-items: flex-start;
      border-bottom: 2px solid #111827;
      padding-bottom: 16px;
      margin-bottom: 32px;
    }
    .title {
      font-size: 28px;
      letter-spacing: 0.08em;
      text-transform: uppercase;
    }
    .meta {
      text-align: right;
      font-size: 14px;
    }
    .meta .label {
      color: #6b7280;
      text-transform: uppercase;
      letter-spacing: 0.04em;
      font-size: 11px;
    }
    table {
      width: 100%;
      border-collapse: collapse;
      font-size: 14px;
      margin-bottom: 24px;
    }
    th, td {
      padding: 10px;
      border-bottom: 1px solid #e5e7eb;
      text-align: left;
    }
    th {
      text-transform: uppercase;
      font-size: 11px;
      letter-spacing: 0.04em;
      color: #6b7280;
    }
    .amount { text-align: right; }
    .totals {
      display: flex;
      justify-content: flex-end;
      font-size: 16px;
      margin-bottom: 8px;
    }
    .totals strong { margin-left: 12px; }
    .words {
      font-size: 13px;
      color: #374151;
      text-align: right;
      font-style: italic;
    }
    .footer {
      margin-top: 48px;
      border-top: 1px solid #e5e7eb;
      padding-top: 16px;
      font-size: 12px;
      color: #6b7280;
    }
  </style>
</head>
<body>
  <div class="invoice">
    <div class="header">
      <div>
        <div class="title">Invoice</div>
        <div>Bhavesh</div>
      </div>
      <div class="meta">
        <div class="label">Invoice No.</div>
        <div><strong>{{.InvoiceNumber}}</strong></div>
        <div class="label">Date</div>
        <div>{{.Date}}</div>
      </div>
    </div>

    <table>
      <thead>
        <tr>
          <th>Description</th>
          <th class="amount">Amount (INR)</th>
        </tr>
      </thead>
      <tbody>
        <tr>
          <td>Professional services</td>
          <td class="amount">{{.AmountFormatted}}</td>
        </tr>
      </tbody>
    </table>

    <div class="totals">
      <span>Total</span>
      <strong>Rs. {{.AmountFormatted}}</strong>
    </div>
    <div class="words">{{.AmountWords}} Rupees Only</div>

    <div class="footer">
      This is a computer generated invoice.
    </div>
  </div>
</body>
</html>
`
