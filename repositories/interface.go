package repositories

// DataRepository is the persistence contract shared by every entity kind.
// GetByString looks a record up by its natural string key; for users that
// key is the email, compared case-insensitively.
//
// Update expects existing to be a record previously fetched through this
// repository; it overwrites every scalar field of existing with the values
// of incoming and persists the result in one save.
type DataRepository[T any] interface {
	GetAll() ([]T, error)
	GetByID(id int) (*T, error)
	GetByString(key string) (*T, error)
	Add(entity *T) error
	Update(existing, incoming *T) error
	Delete(entity *T) error
}
