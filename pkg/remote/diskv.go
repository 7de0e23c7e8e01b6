package remote

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"
	"go.uber.org/zap"
)

// Diskv is the local record store. Keys are `table.owner.id` with the owner
// and id segments base64 encoded so arbitrary identifiers (uuids, calendar
// day keys) survive the path transform. The dot separator is outside the
// base64url alphabet, so encoded segments can never split wrong.
type Diskv struct {
	d        *diskv.Diskv
	basePath string
	log      *zap.Logger
}

// NewDiskv opens (or creates) a record store rooted at basePath.
func NewDiskv(basePath string, log *zap.Logger) (*Diskv, error) {
	if basePath == "" {
		return nil, fmt.Errorf("remote: store base path required")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Diskv{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      1024 * 1024, // 1MB
		}),
		basePath: basePath,
		log:      log,
	}, nil
}

var _ Interface = (*Diskv)(nil)

func (s *Diskv) List(ctx context.Context, table, ownerID string) ([]Record, error) {
	if err := validTable(table); err != nil {
		return nil, err
	}
	prefix := table + "." + encodeSegment(ownerID) + "."
	out := make([]Record, 0)
	for key := range s.d.KeysPrefix(prefix, ctx.Done()) {
		val, err := s.d.Read(key)
		if err != nil {
			s.log.Warn("skipping unreadable record", zap.String("key", key), zap.Error(err))
			continue
		}
		rec := Record{}
		if err := json.Unmarshal(val, &rec); err != nil {
			s.log.Warn("skipping undecodable record", zap.String("key", key), zap.Error(err))
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *Diskv) Insert(ctx context.Context, table string, rec Record) (Record, error) {
	if err := validTable(table); err != nil {
		return nil, err
	}
	if rec.String("id") == "" {
		rec["id"] = uuid.NewString()
	}
	if err := s.write(table, rec.String("owner_id"), rec.String("id"), rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Diskv) Update(ctx context.Context, table, id string, partial Record) error {
	if err := validTable(table); err != nil {
		return err
	}
	key, rec, err := s.find(ctx, table, id)
	if err != nil {
		return err
	}
	for k, v := range partial {
		rec[k] = v
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.d.Write(key, data)
}

func (s *Diskv) Delete(ctx context.Context, table, id string) error {
	if err := validTable(table); err != nil {
		return err
	}
	key, _, err := s.find(ctx, table, id)
	if err != nil {
		return err
	}
	return s.d.Erase(key)
}

func (s *Diskv) Upsert(ctx context.Context, table, key string, rec Record) error {
	if err := validTable(table); err != nil {
		return err
	}
	return s.write(table, rec.String("owner_id"), key, rec)
}

// BasePath is where the store lives on disk, used by the change watcher.
func (s *Diskv) BasePath() string {
	return s.basePath
}

func (s *Diskv) write(table, owner, id string, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.d.Write(toKey(table, owner, id), data)
}

// find scans a table for the record with the given id, any owner. Updates and
// deletes address records by id alone, matching the hosted store's contract.
func (s *Diskv) find(ctx context.Context, table, id string) (string, Record, error) {
	for key := range s.d.KeysPrefix(table+".", ctx.Done()) {
		val, err := s.d.Read(key)
		if err != nil {
			continue
		}
		rec := Record{}
		if err := json.Unmarshal(val, &rec); err != nil {
			continue
		}
		if rec.String("id") == id || keyID(key) == id {
			return key, rec, nil
		}
	}
	return "", nil, ErrNotFound
}

// toKey makes `table.owner.id` with the variable segments encoded.
func toKey(table, owner, id string) string {
	return fmt.Sprintf("%s.%s.%s", table, encodeSegment(owner), encodeSegment(id))
}

func keyID(key string) string {
	parts := strings.Split(key, ".")
	return decodeSegment(parts[len(parts)-1])
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, ".")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s.%s", strings.Join(pathKey.Path, "."), pathKey.FileName)
}

func encodeSegment(s string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(s))
}

func decodeSegment(s string) string {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return s
	}
	return string(raw)
}
