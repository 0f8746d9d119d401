package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/avelar/physlab/internal/calc"
)

func TestCSV(t *testing.T) {
	c := calc.NewSolar()
	params := calc.Defaults(c.Fields())
	res := c.Compute(params)

	var buf bytes.Buffer
	if err := CSV(&buf, res); err != nil {
		t.Fatalf("csv: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if len(rows) != 51 { // header + 50 samples
		t.Fatalf("expected 51 rows, got %d", len(rows))
	}
	if rows[0][0] != "Solar Irradiance (W/m²)" || rows[0][1] != "Energy (Wh)" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "0.000000" || rows[1][1] != "0.000000" {
		t.Errorf("unexpected first sample: %v", rows[1])
	}
	if !strings.HasPrefix(rows[50][0], "1400.") {
		t.Errorf("expected final irradiance 1400, got %s", rows[50][0])
	}
}

func TestCSVNoSeries(t *testing.T) {
	c := calc.NewProjectile()
	res := c.Compute(calc.Params{"velocity": 0, "angle": 45})

	if err := CSV(&bytes.Buffer{}, res); err == nil {
		t.Error("expected error for missing series")
	}
}

func TestJSON(t *testing.T) {
	c := calc.NewEV()
	params := calc.Params{"capacity": 75, "consumption": 18, "distance": 600}
	res := c.Compute(params)

	var buf bytes.Buffer
	if err := JSON(&buf, c.Name(), params, res); err != nil {
		t.Fatalf("json: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if data.Calculator != "ev" {
		t.Errorf("expected calculator ev, got %s", data.Calculator)
	}
	if data.Samples != 100 || len(data.Points) != 100 {
		t.Errorf("expected 100 points, got %d/%d", data.Samples, len(data.Points))
	}
	if data.Warning == "" {
		t.Error("expected depleted warning in export")
	}
	if data.Metrics["Energy Consumed"] != 108 {
		t.Errorf("expected drained 108, got %f", data.Metrics["Energy Consumed"])
	}
}

func TestJSONNoSeries(t *testing.T) {
	c := calc.NewProjectile()
	params := calc.Params{"velocity": 0, "angle": 0}
	res := c.Compute(params)

	var buf bytes.Buffer
	if err := JSON(&buf, c.Name(), params, res); err != nil {
		t.Fatalf("json: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if data.Samples != 0 || len(data.Points) != 0 {
		t.Errorf("expected no points, got %d", len(data.Points))
	}
	if data.Note == "" {
		t.Error("expected note explaining the missing trajectory")
	}
}
