package storage // import "github.com/Xunop/bookserver/internal/storage"

type Storage interface {
	// Save stores data under name and returns where it was written
	Save(name string, data []byte) (string, error)
	// Load loads the data stored under name
	Load(name string) ([]byte, error)
}
