// Package export serializes seed trajectories for downstream tooling.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/arnav-shukla/switchseed/internal/hybrid"
)

type Data struct {
	Provider   string      `json:"provider"`
	Algorithm  string      `json:"algorithm"`
	StateDim   int         `json:"state_dim"`
	InputDim   int         `json:"input_dim"`
	Partitions int         `json:"partitions"`
	Samples    int         `json:"samples"`
	Times      []float64   `json:"times"`
	States     [][]float64 `json:"states"`
	Inputs     [][]float64 `json:"inputs"`
}

// Meta labels an exported trajectory.
type Meta struct {
	Provider   string
	Algorithm  string
	Partitions int
}

func build(meta Meta, tr *hybrid.Trajectory) Data {
	stateDim, inputDim := 0, 0
	if tr.Len() > 0 {
		stateDim = len(tr.States[0])
		inputDim = len(tr.Inputs[0])
	}
	data := Data{
		Provider:   meta.Provider,
		Algorithm:  meta.Algorithm,
		StateDim:   stateDim,
		InputDim:   inputDim,
		Partitions: meta.Partitions,
		Samples:    tr.Len(),
		Times:      tr.Times,
		States:     make([][]float64, len(tr.States)),
		Inputs:     make([][]float64, len(tr.Inputs)),
	}
	for i, s := range tr.States {
		data.States[i] = s
	}
	for i, u := range tr.Inputs {
		data.Inputs[i] = u
	}
	return data
}

// WriteJSON writes the trajectory as indented JSON.
func WriteJSON(w io.Writer, meta Meta, tr *hybrid.Trajectory) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(build(meta, tr))
}

// JSON writes the trajectory as indented JSON to path.
func JSON(path string, meta Meta, tr *hybrid.Trajectory) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, meta, tr)
}

// WriteCSV writes the trajectory as rows of time, state components,
// input components, with a header row.
func WriteCSV(w io.Writer, tr *hybrid.Trajectory) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	stateDim, inputDim := 0, 0
	if tr.Len() > 0 {
		stateDim = len(tr.States[0])
		inputDim = len(tr.Inputs[0])
	}

	header := []string{"time"}
	for i := 0; i < stateDim; i++ {
		header = append(header, fmt.Sprintf("x%d", i))
	}
	for i := 0; i < inputDim; i++ {
		header = append(header, fmt.Sprintf("u%d", i))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, 0, 1+stateDim+inputDim)
	for i := range tr.Times {
		row = row[:0]
		row = append(row, strconv.FormatFloat(tr.Times[i], 'g', -1, 64))
		for _, v := range tr.States[i] {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		for _, v := range tr.Inputs[i] {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSV writes the trajectory as CSV to path.
func CSV(path string, tr *hybrid.Trajectory) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteCSV(file, tr)
}
