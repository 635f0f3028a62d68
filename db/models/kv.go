package models

// KVEntry is one key of the ordered key-value store kept in postgres.
// bytea compares bytewise, which gives the same ordering as the embedded backends.
type KVEntry struct {
	Key   []byte `gorm:"primaryKey;column:store_key"`
	Value []byte `gorm:"column:store_value;not null"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
