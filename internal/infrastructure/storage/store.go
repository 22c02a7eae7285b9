package storage

import (
	"bytes"
	"new-haven-server/pkg/logger"
	"time"

	"github.com/pkg/errors"
	"github.com/quasilyte/gdata/v2"
	"github.com/sirupsen/logrus"
)

// ErrProfileNotFound - сохранения еще нет
var ErrProfileNotFound = errors.New("profile not found")

const profilesObject = "profiles"

// Backend - кроссплатформенное хранилище ключ-значение. Его реализует *gdata.Manager.
type Backend interface {
	ObjectPropExists(objectKey, propKey string) bool
	LoadObjectProp(objectKey, propKey string) ([]byte, error)
	SaveObjectProp(objectKey, propKey string, data []byte) error
}

// OpenBackend открывает каталог данных приложения
func OpenBackend(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, errors.Wrapf(err, "open data dir for %q", appName)
	}
	return m, nil
}

// ProfileStore хранит профили игроков.
// Без backend работает в режиме без сохранения: Save ничего не делает.
type ProfileStore struct {
	backend Backend
	now     func() time.Time
	log     *logrus.Entry
}

func NewProfileStore(backend Backend) *ProfileStore {
	return &ProfileStore{
		backend: backend,
		now:     time.Now,
		log:     logger.For("profile_store"),
	}
}

// Save пишет профиль под именем name
func (s *ProfileStore) Save(name string, rec ProfileRecord) error {
	if s.backend == nil {
		return nil
	}
	if rec.SavedAt == 0 {
		rec.SavedAt = s.now().Unix()
	}

	var buf bytes.Buffer
	if err := writeProfile(&buf, &rec); err != nil {
		return errors.Wrapf(err, "encode profile %q", name)
	}
	if err := s.backend.SaveObjectProp(profilesObject, name, buf.Bytes()); err != nil {
		return errors.Wrapf(err, "save profile %q", name)
	}

	s.log.WithFields(logrus.Fields{
		"profile": name,
		"level":   rec.Stats.Level,
		"bytes":   buf.Len(),
	}).Info("Profile saved")
	return nil
}

// Load читает профиль. ErrProfileNotFound, если сохранения нет.
func (s *ProfileStore) Load(name string) (*ProfileRecord, error) {
	if s.backend == nil || !s.backend.ObjectPropExists(profilesObject, name) {
		return nil, ErrProfileNotFound
	}

	data, err := s.backend.LoadObjectProp(profilesObject, name)
	if err != nil {
		return nil, errors.Wrapf(err, "load profile %q", name)
	}
	rec, err := readProfile(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "decode profile %q", name)
	}

	s.log.WithFields(logrus.Fields{
		"profile": name,
		"level":   rec.Stats.Level,
	}).Info("Profile loaded")
	return rec, nil
}
