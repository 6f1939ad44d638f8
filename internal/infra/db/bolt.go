package db

import (
	"time"

	bolt "go.etcd.io/bbolt"
)

// 状態を入れるバケット。localStorage相当のキー空間。
var StateBucket = []byte("state")

// Open はストアファイルを開いてバケットを用意する。
func Open(path string) (*bolt.DB, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(StateBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
