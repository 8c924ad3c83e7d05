// Package config reads the environment for the hosting binaries.
//
// cmd/ssh reads SSH_HOST, SSH_PORT and SSH_HOST_KEY; cmd/web reads WEB_HOST,
// WEB_PORT and SSH_DISPLAY_HOST. The local game binaries take no
// configuration at all.
package config

import "os"

// GetEnv returns the value of the environment variable key, or fallback when
// it is unset. A variable set to the empty string is returned as is, so
// SSH_HOST_KEY= turns the persistent host key off.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
