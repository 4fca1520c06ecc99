package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/bounce/internal/analysis"
	"github.com/san-kum/bounce/internal/config"
)

type ExportData struct {
	Config   *config.Config     `json:"config"`
	Dt       float64            `json:"dt"`
	Duration float64            `json:"duration"`
	Steps    int                `json:"steps"`
	Times    []float64          `json:"times"`
	States   [][4]float64       `json:"states"`
	Contacts []int              `json:"contacts"`
	Apexes   []float64          `json:"apexes"`
	Metrics  map[string]float64 `json:"metrics"`
}

func newExportData(cfg *config.Config, res *analysis.Result) ExportData {
	data := ExportData{
		Config:   cfg,
		Dt:       res.Dt,
		Duration: res.Duration,
		Steps:    len(res.Samples) - 1,
		Times:    make([]float64, len(res.Samples)),
		States:   make([][4]float64, len(res.Samples)),
		Contacts: make([]int, len(res.Samples)),
		Apexes:   res.Apexes,
		Metrics:  res.Metrics,
	}

	for i, s := range res.Samples {
		data.Times[i] = s.T
		data.States[i] = [4]float64{s.X, s.Y, s.VX, s.VY}
		data.Contacts[i] = int(s.Contact)
	}
	return data
}

// WriteJSON encodes the trace as indented JSON. States are x, y, vx, vy;
// contacts hold one physics.Contact mask per sample.
func WriteJSON(w io.Writer, cfg *config.Config, res *analysis.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newExportData(cfg, res))
}

func ExportJSON(path string, cfg *config.Config, res *analysis.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, cfg, res)
}

func ExportSVG(path string, res *analysis.Result, strokeColor string) error {
	return os.WriteFile(path, []byte(TraceToSVG(res, strokeColor)), 0644)
}
