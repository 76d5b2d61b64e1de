package storage

import (
	"encoding/json"

	"belanja/internal/core"
)

// persistedRecord is the wire shape of one record. Field names match the
// blobs written by the mobile app; hargaSatuan is a cached derived value
// that is persisted for compatibility but never trusted on read.
type persistedRecord struct {
	ID         int64   `json:"id"`
	Date       string  `json:"date"`
	Name       string  `json:"namaBarang"`
	TotalPrice int64   `json:"hargaTotal"`
	Quantity   int64   `json:"jumlah"`
	Unit       string  `json:"satuan"`
	UnitPrice  float64 `json:"hargaSatuan"`
}

func encodeRecords(records []core.Record) (string, error) {
	out := make([]persistedRecord, len(records))
	for i, r := range records {
		p := persistedRecord{
			ID:         r.ID,
			Date:       r.Date,
			Name:       r.Name,
			TotalPrice: r.TotalPrice,
			Quantity:   r.Quantity,
			Unit:       r.Unit,
		}
		if r.Quantity > 0 {
			p.UnitPrice = float64(r.TotalPrice) / float64(r.Quantity)
		}
		out[i] = p
	}
	b, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeRecords parses a stored blob. The persisted hargaSatuan is
// dropped; unit prices are recomputed from their source fields so edits
// made elsewhere cannot leave the derived value stale.
func decodeRecords(value string) ([]core.Record, error) {
	var in []persistedRecord
	if err := json.Unmarshal([]byte(value), &in); err != nil {
		return nil, err
	}
	records := make([]core.Record, len(in))
	for i, p := range in {
		records[i] = core.Record{
			ID:         p.ID,
			Date:       p.Date,
			Name:       p.Name,
			TotalPrice: p.TotalPrice,
			Quantity:   p.Quantity,
			Unit:       p.Unit,
		}
	}
	return records, nil
}
