package contract

// IUUIDGenerator produces collision-resistant record identifiers.
type IUUIDGenerator interface {
	NewUUID() string
}
