// Package persistence implements the versioned-record envelope spec.md §6
// describes for the engine's external collaborators: every stored record
// is `{schemaVersion, updatedAt, data}`; reads apply migrations before
// validating the payload; malformed or too-new records are discarded, not
// repaired.
package persistence

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/rgehrsitz/fersproj/internal/engineerr"
)

// CurrentSchemaVersion is the newest schema version this engine understands.
// Records newer than this are rejected outright, per spec.md §6/§7.
const CurrentSchemaVersion = 5

// Envelope is the on-disk/on-wire shape of a persisted record.
type Envelope struct {
	SchemaVersion int             `json:"schemaVersion"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	Data          json.RawMessage `json:"data"`
}

// rawRecord is the mutable, untyped form migrations operate on: a pure
// unknown -> unknown transform, per spec.md §6.
type rawRecord = map[string]interface{}

// Migration upgrades a record one schema version forward.
type Migration func(rawRecord) (rawRecord, error)

// migrations is keyed by the version a record is migrating FROM: entry 1
// upgrades a v1 record to v2, entry 2 upgrades v2 to v3, and so on through
// v4 -> v5. Applied in order by Load below.
var migrations = map[int]Migration{
	1: migrateV1ToV2,
	2: migrateV2ToV3,
	3: migrateV3ToV4,
	4: migrateV4ToV5,
}

// Save wraps data in a fresh envelope at CurrentSchemaVersion and
// marshals it, stamping UpdatedAt at call time.
func Save(data interface{}, now time.Time) ([]byte, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	env := Envelope{
		SchemaVersion: CurrentSchemaVersion,
		UpdatedAt:     now,
		Data:          payload,
	}
	return json.Marshal(env)
}

// Load parses raw bytes as an Envelope, rejects anything newer than
// CurrentSchemaVersion, runs every applicable migration in order, and
// unmarshals the migrated payload into out. Malformed JSON or a payload
// that fails to unmarshal into out after migration is returned as an
// InvalidInput error rather than partially repaired, per spec.md §6.
func Load(raw []byte, out interface{}) error {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return engineerr.NewInvalidInput("envelope", string(raw), "malformed persisted record")
	}

	if env.SchemaVersion > CurrentSchemaVersion {
		return engineerr.NewSchemaVersionTooNew(env.SchemaVersion, CurrentSchemaVersion)
	}
	if env.SchemaVersion < 1 {
		return engineerr.NewInvalidInput("schemaVersion", env.SchemaVersion, "must be at least 1")
	}

	var record rawRecord
	if err := json.Unmarshal(env.Data, &record); err != nil {
		return engineerr.NewInvalidInput("data", string(env.Data), "payload is not a JSON object")
	}

	for v := env.SchemaVersion; v < CurrentSchemaVersion; v++ {
		migrate, ok := migrations[v]
		if !ok {
			return engineerr.NewInvalidInput("schemaVersion", v, "no migration registered for this version")
		}
		migrated, err := migrate(record)
		if err != nil {
			return engineerr.NewInvalidInput("data", string(env.Data), "migration from v"+strconv.Itoa(v)+" failed: "+err.Error())
		}
		record = migrated
	}

	migratedPayload, err := json.Marshal(record)
	if err != nil {
		return engineerr.NewInvalidInput("data", string(env.Data), "could not re-marshal migrated record")
	}
	if err := json.Unmarshal(migratedPayload, out); err != nil {
		return engineerr.NewInvalidInput("data", string(migratedPayload), "migrated payload does not match the current schema")
	}
	return nil
}
