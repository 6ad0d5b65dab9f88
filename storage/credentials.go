package storage

import (
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.etcd.io/bbolt"

	"go-foodie-storefront/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var credentialsBucket = []byte("credentials")

// CredentialStore is the durable side of the auth container: per session,
// two independent entries (raw token, serialized profile) that let a
// restarted process rehydrate without a network call. The two entries are
// written and deleted together.
type CredentialStore struct {
	db *bbolt.DB
}

func Open(path string) (*CredentialStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "open state db")
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(credentialsBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "init credentials bucket")
	}
	return &CredentialStore{db: db}, nil
}

func (s *CredentialStore) Close() error {
	return s.db.Close()
}

func tokenKey(sid string) []byte   { return []byte(sid + ":token") }
func profileKey(sid string) []byte { return []byte(sid + ":profile") }

func (s *CredentialStore) Save(sid, token string, profile *models.Profile) error {
	buf, err := json.Marshal(profile)
	if err != nil {
		return errors.Wrap(err, "encode profile")
	}
	err = s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(credentialsBucket)
		if err := b.Put(tokenKey(sid), []byte(token)); err != nil {
			return err
		}
		return b.Put(profileKey(sid), buf)
	})
	return errors.Wrap(err, "save credential")
}

// Load returns the cached credential for a session. If either entry is
// missing the credential is treated as absent.
func (s *CredentialStore) Load(sid string) (string, *models.Profile, error) {
	var token string
	var profileBuf []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(credentialsBucket)
		if v := b.Get(tokenKey(sid)); v != nil {
			token = string(v)
		}
		if v := b.Get(profileKey(sid)); v != nil {
			profileBuf = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return "", nil, errors.Wrap(err, "load credential")
	}
	if token == "" || len(profileBuf) == 0 {
		return "", nil, nil
	}
	var profile models.Profile
	if err := json.Unmarshal(profileBuf, &profile); err != nil {
		return "", nil, errors.Wrap(err, "decode profile")
	}
	return token, &profile, nil
}

// Clear removes both entries. Clearing an absent credential is a no-op.
func (s *CredentialStore) Clear(sid string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(credentialsBucket)
		if err := b.Delete(tokenKey(sid)); err != nil {
			return err
		}
		return b.Delete(profileKey(sid))
	})
	return errors.Wrap(err, "clear credential")
}
