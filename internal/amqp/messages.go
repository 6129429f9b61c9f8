package amqp

import (
	"encoding/json"
	"time"
)

// LedgerMirrorMessage asks the worker to mirror one transaction to the
// external ledger sheet. It carries only the ID and version; the worker
// fetches the full row from storage.
type LedgerMirrorMessage struct {
	ID        int64     `json:"id"`
	Version   int64     `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

func NewLedgerMirrorMessage(id, version int64) *LedgerMirrorMessage {
	return &LedgerMirrorMessage{
		ID:        id,
		Version:   version,
		Timestamp: time.Now(),
	}
}

func (m *LedgerMirrorMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func LedgerMirrorMessageFromJSON(data []byte) (*LedgerMirrorMessage, error) {
	var msg LedgerMirrorMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
