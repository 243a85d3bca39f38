package cache

import (
	"path/filepath"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

var (
	syncOptions = &opt.WriteOptions{Sync: true}
)

// LevelDB is a Driver backed by a LevelDB database. A database can
// only be opened by one process at a time.
type LevelDB struct {
	db *leveldb.DB
}

// OpenLevelDB opens (or creates) the LevelDB database in the given
// directory.
func OpenLevelDB(dir string) (*LevelDB, error) {
	db, err := leveldb.OpenFile(filepath.Join(dir, "leveldb"), nil)
	if err != nil {
		return nil, err
	}
	return &LevelDB{db: db}, nil
}

func (d *LevelDB) Set(key string, b []byte) error {
	return d.db.Put([]byte(key), b, syncOptions)
}

func (d *LevelDB) Get(key string) ([]byte, error) {
	value, err := d.db.Get([]byte(key), nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return value, nil
}

func (d *LevelDB) Delete(key string) error {
	return d.db.Delete([]byte(key), syncOptions)
}

func (d *LevelDB) Close() error {
	return d.db.Close()
}

func leveldbOpener(dir string) (Driver, error) {
	return OpenLevelDB(dir)
}

func init() {
	Register("leveldb", leveldbOpener)
}
