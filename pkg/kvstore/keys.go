package kvstore

// Collection keys. Each holds one JSON document covering the whole
// collection; readers and writers always move the full blob.
const (
	KeyMovies        = "myflix_movies"
	KeyUsers         = "myflix_users"
	KeySettings      = "myflix_settings"
	KeyNotifications = "myflix_notifications"
	KeySessionUser   = "myflix_session_user"
)
