package memory

import "videostore/internal/repository"

// Compile-time checks that the in-memory stores satisfy the repository
// interfaces the services depend on.
var (
	_ repository.MovieRepository    = (*MovieRepository)(nil)
	_ repository.CustomerRepository = (*CustomerRepository)(nil)
)
