package store

// UseFastKDF lowers the scrypt cost so tests stay quick.
func UseFastKDF(s *CredentialFileStore) {
	s.params = func() (N, r, p int) { return 1 << 10, 8, 1 }
}
