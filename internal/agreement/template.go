package agreement

const agreementHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Rental Agreement {{.Rental.AgreementNumber}}</title>
<style>
  body { font-family: Arial, Helvetica, sans-serif; font-size: 13px; color: #222; margin: 24px; }
  .header { display: flex; justify-content: space-between; align-items: center; border-bottom: 2px solid #222; padding-bottom: 12px; }
  .header img { max-height: 64px; }
  h1 { font-size: 20px; margin: 0; }
  h2 { font-size: 14px; border-bottom: 1px solid #999; padding-bottom: 4px; margin-top: 24px; }
  table { width: 100%; border-collapse: collapse; margin-top: 8px; }
  td, th { border: 1px solid #ccc; padding: 6px 8px; text-align: left; vertical-align: top; }
  th { background: #f2f2f2; width: 28%; }
  .amounts td { font-weight: bold; }
  .urdu { direction: rtl; text-align: right; font-size: 14px; line-height: 2; }
  .terms ol { padding-left: 20px; }
  .terms li { margin-bottom: 6px; }
  .signatures { display: flex; justify-content: space-between; margin-top: 48px; }
  .sig { width: 30%; text-align: center; }
  .sig img { max-height: 60px; }
  .sig .line { border-top: 1px solid #222; margin-top: 48px; padding-top: 4px; }
  .damage-photos img { max-height: 120px; margin: 4px; }
</style>
</head>
<body>

<div class="header">
  <div>
    <h1>{{.Company.Name}}</h1>
    <div>{{.Company.Address}}</div>
    <div>Phone: {{.Company.Phone}}</div>
  </div>
  {{if .Company.LogoURL}}<img src="{{.Company.LogoURL}}" alt="logo">{{end}}
</div>

<h2>Agreement {{if .Rental.AgreementNumber}}No. {{.Rental.AgreementNumber}}{{end}}</h2>
<table>
  <tr><th>Delivery</th><td>{{.Rental.DeliveryDate}} {{.Rental.DeliveryTime}}</td></tr>
  <tr><th>Return</th><td>{{.Rental.ReturnDate}} {{.Rental.ReturnTime}}</td></tr>
  <tr><th>Rent Type</th><td>{{.Rental.RentType}}{{if gt .Rental.CustomDays 0}} ({{.Rental.CustomDays}} days){{end}}</td></tr>
</table>

<h2>Client</h2>
<table>
  <tr><th>Name</th><td>{{.Rental.Client.FullName}}</td></tr>
  <tr><th>CNIC</th><td>{{.Rental.Client.CNIC}}</td></tr>
  <tr><th>Phone</th><td>{{.Rental.Client.Phone}}</td></tr>
  <tr><th>Address</th><td>{{.Rental.Client.Address}}</td></tr>
</table>

{{if .Rental.Witness.Name}}
<h2>Witness</h2>
<table>
  <tr><th>Name</th><td>{{.Rental.Witness.Name}}</td></tr>
  <tr><th>CNIC</th><td>{{.Rental.Witness.CNIC}}</td></tr>
  <tr><th>Phone</th><td>{{.Rental.Witness.Phone}}</td></tr>
  <tr><th>Address</th><td>{{.Rental.Witness.Address}}</td></tr>
</table>
{{end}}

<h2>Vehicle</h2>
<table>
  <tr><th>Vehicle</th><td>{{.Rental.Vehicle.Name}}</td></tr>
  <tr><th>Make / Model</th><td>{{.Rental.Vehicle.Brand}} {{.Rental.Vehicle.Model}}{{if .Rental.Vehicle.Year}} ({{.Rental.Vehicle.Year}}){{end}}</td></tr>
  <tr><th>Color</th><td>{{.Rental.Vehicle.Color}}</td></tr>
</table>

<h2>Payment</h2>
<table class="amounts">
  <tr><th>Total Amount</th><td>{{money .Rental.TotalAmount}}</td></tr>
  <tr><th>Advance Payment</th><td>{{money .Rental.AdvancePayment}}</td></tr>
  <tr><th>Balance</th><td>{{money .Rental.Balance}}</td></tr>
  <tr><th>Status</th><td>{{.Rental.PaymentStatus}}</td></tr>
</table>

{{with .Rental.VehicleCondition}}
<h2>Vehicle Condition at Handover</h2>
<table>
  {{if .TyresCondition}}<tr><th>Tyres</th><td>{{.TyresCondition}}</td></tr>{{end}}
  {{if .TyrePressure}}<tr><th>Tyre Pressure</th><td>{{.TyrePressure}}</td></tr>{{end}}
  {{if .FrontBumper}}<tr><th>Front Bumper</th><td>{{.FrontBumper}}</td></tr>{{end}}
  {{if .BackBumper}}<tr><th>Back Bumper</th><td>{{.BackBumper}}</td></tr>{{end}}
  {{if .SideMirrors}}<tr><th>Side Mirrors</th><td>{{.SideMirrors}}</td></tr>{{end}}
  {{if .WindowsGlass}}<tr><th>Windows / Glass</th><td>{{.WindowsGlass}}</td></tr>{{end}}
  {{if .ACWorking}}<tr><th>AC</th><td>{{.ACWorking}}</td></tr>{{end}}
  {{if .HeaterWorking}}<tr><th>Heater</th><td>{{.HeaterWorking}}</td></tr>{{end}}
  {{if .Horn}}<tr><th>Horn</th><td>{{.Horn}}</td></tr>{{end}}
  {{if .Wipers}}<tr><th>Wipers</th><td>{{.Wipers}}</td></tr>{{end}}
  {{if .SeatCondition}}<tr><th>Seats</th><td>{{.SeatCondition}}</td></tr>{{end}}
  {{if .SeatBelts}}<tr><th>Seat Belts</th><td>{{.SeatBelts}}</td></tr>{{end}}
  {{if .FuelLevel}}<tr><th>Fuel Level</th><td>{{.FuelLevel}}</td></tr>{{end}}
  {{if .Mileage}}<tr><th>Mileage</th><td>{{.Mileage}}</td></tr>{{end}}
  {{if .Radiator}}<tr><th>Radiator</th><td>{{.Radiator}}</td></tr>{{end}}
</table>
{{end}}

{{with .Rental.DentsScratches}}
<h2>Pre-existing Damage</h2>
{{if .Notes}}<p>{{.Notes}}</p>{{end}}
<div class="damage-photos">
  {{range .ImageURLs}}<img src="{{.}}" alt="damage photo">{{end}}
</div>
{{end}}

<h2>Terms &amp; Conditions</h2>
<div class="terms">
<ol>
  <li>The vehicle must be returned on the agreed date and time; late return is charged at the agreed daily rate.</li>
  <li>The hirer is responsible for all traffic violations, challans, and tolls incurred during the rental period.</li>
  <li>Fuel is the hirer's responsibility; the vehicle must be returned with the same fuel level as at handover.</li>
  <li>Any damage beyond the pre-existing condition recorded above is charged to the hirer at actual repair cost.</li>
  <li>The vehicle may not be sub-let, used for racing, or driven outside the agreed territory without written consent.</li>
  <li>The advance payment is adjusted against the total; the remaining balance is due at return.</li>
</ol>
</div>

<h2>شرائط و ضوابط</h2>
<div class="urdu">
گاڑی مقررہ تاریخ اور وقت پر واپس کرنا لازمی ہے، تاخیر کی صورت میں طے شدہ یومیہ کرایہ وصول کیا جائے گا۔
کرایہ کی مدت کے دوران تمام چالان اور ٹول کرایہ دار کی ذمہ داری ہوں گے۔
ایندھن کرایہ دار کی ذمہ داری ہے اور گاڑی اسی ایندھن کی سطح پر واپس کی جائے گی۔
اوپر درج حالت سے زائد کسی بھی نقصان کی مرمت کا خرچ کرایہ دار ادا کرے گا۔
گاڑی کسی اور کو کرایہ پر دینا یا تحریری اجازت کے بغیر طے شدہ حدود سے باہر لے جانا منع ہے۔
پیشگی ادائیگی کل رقم میں شامل ہوگی اور بقایا رقم واپسی پر ادا کرنا ہوگی۔
</div>

<div class="signatures">
  <div class="sig">
    {{if .Rental.ClientSignatureURL}}<img src="{{.Rental.ClientSignatureURL}}" alt="client signature">{{end}}
    <div class="line">Client Signature</div>
  </div>
  <div class="sig">
    <div class="line">Witness Signature</div>
  </div>
  <div class="sig">
    {{if .Rental.OwnerSignatureURL}}<img src="{{.Rental.OwnerSignatureURL}}" alt="owner signature">{{end}}
    <div class="line">Owner Signature</div>
  </div>
</div>

</body>
</html>
`
