package cart

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const recordDateLayout = "2006-01-02"

var errMalformedRecord = errors.New("cart record is not a JSON object")

// lineRecord is the persisted shape of a line. Absent reservation fields are
// written as null.
type lineRecord struct {
	ItemID           int     `json:"itemId"`
	Kind             Kind    `json:"kind"`
	Quantity         int     `json:"quantity"`
	ReservationDate  *string `json:"reservationDate"`
	ReservationTime  *string `json:"reservationTime"`
	ReservationNotes *string `json:"reservationNotes"`
}

func toRecord(l Line) lineRecord {
	rec := lineRecord{
		ItemID:   l.ItemID,
		Kind:     l.Kind,
		Quantity: l.Quantity,
	}
	if l.ReservationDate != nil {
		d := l.ReservationDate.Format(recordDateLayout)
		rec.ReservationDate = &d
	}
	if l.ReservationTime != "" {
		t := l.ReservationTime
		rec.ReservationTime = &t
	}
	if l.ReservationNotes != "" {
		n := l.ReservationNotes
		rec.ReservationNotes = &n
	}
	return rec
}

func fromRecord(rec lineRecord) (Line, bool) {
	line := Line{
		ItemID:   rec.ItemID,
		Kind:     rec.Kind,
		Quantity: rec.Quantity,
	}
	if rec.ReservationDate != nil && *rec.ReservationDate != "" {
		d, err := parseRecordDate(*rec.ReservationDate)
		if err != nil {
			return Line{}, false
		}
		line.ReservationDate = &d
	}
	if rec.ReservationTime != nil {
		line.ReservationTime = *rec.ReservationTime
	}
	if rec.ReservationNotes != nil {
		line.ReservationNotes = *rec.ReservationNotes
	}
	return line, line.valid()
}

// parseRecordDate accepts a plain calendar date or a full ISO-8601 timestamp.
func parseRecordDate(s string) (time.Time, error) {
	if d, err := time.Parse(recordDateLayout, s); err == nil {
		return d, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("reservation date %q: %w", s, err)
	}
	return dateOnly(t), nil
}

// encodeLines writes the cart as a JSON object keyed by line key, keeping the
// members in cart order.
func encodeLines(lines []Line) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, l := range lines {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(l.Key().String())
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(toRecord(l))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// decodeLines reads a cart record in member order. Members that do not
// describe a valid line are skipped and counted; a repeated line key keeps its
// first position and its last value.
func decodeLines(data []byte) ([]Line, int, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, 0, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, 0, errMalformedRecord
	}

	var (
		lines   []Line
		dropped int
		index   = make(map[LineKey]int)
	)
	for dec.More() {
		if _, err := dec.Token(); err != nil {
			return nil, 0, err
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, 0, err
		}

		var rec lineRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			dropped++
			continue
		}
		line, ok := fromRecord(rec)
		if !ok {
			dropped++
			continue
		}
		if i, seen := index[line.Key()]; seen {
			lines[i] = line
			continue
		}
		index[line.Key()] = len(lines)
		lines = append(lines, line)
	}

	if _, err := dec.Token(); err != nil {
		return nil, 0, err
	}
	return lines, dropped, nil
}
