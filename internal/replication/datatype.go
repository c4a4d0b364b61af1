package replication

// DataType names a SQLite storage class used when declaring columns.
type DataType string

// SQLite storage classes.
const (
	Null    DataType = "NULL"
	Integer DataType = "INTEGER"
	Real    DataType = "REAL"
	Text    DataType = "TEXT"
	Blob    DataType = "BLOB"
)

func (d DataType) String() string {
	return string(d)
}
