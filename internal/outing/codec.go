package outing

import (
	"encoding/json"
	"fmt"
)

// storedRecord is the persisted shape. Field names match the data written by
// the web form, so values it left behind stay readable.
type storedRecord struct {
	Fecha       string `json:"fecha"`
	HoraSalida  string `json:"horaSalida"`
	HoraRegreso string `json:"horaRegreso"`
	Motivo      string `json:"motivo"`
	// TiempoUtilizado is always written empty and never read.
	TiempoUtilizado string `json:"tiempoUtilizado"`
}

// Encode serializes records as a JSON array.
func Encode(records []Record) (string, error) {
	list := make([]storedRecord, 0, len(records))
	for _, r := range records {
		list = append(list, storedRecord{
			Fecha:       r.Date,
			HoraSalida:  r.Departure,
			HoraRegreso: r.Return,
			Motivo:      r.Reason,
		})
	}
	data, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("encode outings: %w", err)
	}
	return string(data), nil
}

// Decode parses a value produced by Encode. Anything that is not a JSON array
// of record objects fails with ErrDeserialize.
func Decode(value string) ([]Record, error) {
	var list []storedRecord
	if err := json.Unmarshal([]byte(value), &list); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeserialize, err)
	}
	if list == nil {
		return nil, fmt.Errorf("%w: expected a JSON array", ErrDeserialize)
	}

	records := make([]Record, 0, len(list))
	for _, s := range list {
		records = append(records, Record{
			Date:      s.Fecha,
			Departure: s.HoraSalida,
			Return:    s.HoraRegreso,
			Reason:    s.Motivo,
		})
	}
	return records, nil
}
