// Package export writes calculator results as CSV or JSON.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/avelar/physlab/internal/calc"
)

// ExportData is the JSON document for one evaluation.
type ExportData struct {
	Calculator string             `json:"calculator"`
	Params     map[string]float64 `json:"params"`
	Metrics    map[string]float64 `json:"metrics"`
	Warning    string             `json:"warning,omitempty"`
	Note       string             `json:"note,omitempty"`
	XLabel     string             `json:"x_label,omitempty"`
	YLabel     string             `json:"y_label,omitempty"`
	Samples    int                `json:"samples"`
	Points     [][2]float64       `json:"points,omitempty"`
}

// JSON writes the full result, including the sweep series, as indented JSON.
func JSON(w io.Writer, calculator string, params calc.Params, res calc.Result) error {
	data := ExportData{
		Calculator: calculator,
		Params:     params,
		Metrics:    make(map[string]float64, len(res.Metrics)),
		Warning:    res.Warning,
		Note:       res.Note,
	}
	for _, m := range res.Metrics {
		data.Metrics[m.Label] = m.Value
	}
	if res.Series != nil {
		data.XLabel = res.Series.XLabel
		data.YLabel = res.Series.YLabel
		data.Samples = len(res.Series.Points)
		data.Points = make([][2]float64, len(res.Series.Points))
		for i, p := range res.Series.Points {
			data.Points[i] = [2]float64{p.X, p.Y}
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// CSV writes the sweep series as two columns headed by the axis labels.
func CSV(w io.Writer, res calc.Result) error {
	if res.Series == nil {
		return fmt.Errorf("no series to export")
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{res.Series.XLabel, res.Series.YLabel}); err != nil {
		return err
	}
	for _, p := range res.Series.Points {
		row := []string{
			strconv.FormatFloat(p.X, 'f', 6, 64),
			strconv.FormatFloat(p.Y, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
