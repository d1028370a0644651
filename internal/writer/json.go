package writer

import (
	"encoding/json"
	"fmt"
	"io"
)

type jsonWriter struct {
	writer io.Writer
}

type jsonDocument struct {
	Array []jsonField `json:"array"`
}

type jsonField struct {
	ID   uint16 `json:"id"`
	Name string `json:"name"`
	Data []int  `json:"data"` // byte slices would be encoded as base64
}

// Write outputs the fields as {"array":[{"id":1,"name":"...","data":[0,1]}]}.
func (w *jsonWriter) Write(report Report) error {
	doc := jsonDocument{
		Array: make([]jsonField, 0, len(report.Fields)),
	}
	for _, field := range report.Fields {
		data := make([]int, len(field.Data))
		for i, b := range field.Data {
			data[i] = int(b)
		}
		doc.Array = append(doc.Array, jsonField{
			ID:   field.ID,
			Name: field.Name,
			Data: data,
		})
	}

	encoder := json.NewEncoder(w.writer)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
