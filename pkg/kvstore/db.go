package kvstore

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type kvRecord struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value []byte `gorm:"column:value"`
}

func (kvRecord) TableName() string {
	return "kv_records"
}

// DB persists collections in a kv_records table through GORM, so the
// same store can sit on a local sqlite file or a postgres server.
type DB struct {
	db  *gorm.DB
	log *logrus.Entry
}

func NewDB(db *gorm.DB, log *logrus.Entry) (*DB, error) {
	if err := RunMigration(db); err != nil {
		return nil, err
	}

	return &DB{
		db:  db,
		log: log,
	}, nil
}

func RunMigration(db *gorm.DB) error {
	migrator := db.Migrator()

	if !migrator.HasTable(&kvRecord{}) {
		return db.AutoMigrate(&kvRecord{})
	}

	return nil
}

func (s *DB) Get(key string) ([]byte, bool) {
	var rec kvRecord
	err := s.db.First(&rec, "key = ?", key).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			s.log.Debugf("get %s: %v", key, err)
		}
		return nil, false
	}
	return rec.Value, true
}

func (s *DB) Set(key string, value []byte) {
	rec := kvRecord{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rec).Error
	if err != nil {
		s.log.Debugf("set %s dropped: %v", key, err)
	}
}

func (s *DB) Has(key string) bool {
	var count int64
	if err := s.db.Model(&kvRecord{}).Where("key = ?", key).Count(&count).Error; err != nil {
		return false
	}
	return count > 0
}
