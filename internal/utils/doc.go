// Package utils provides small helpers shared by the adapters and services:
// a preconfigured resty HTTP client, URL normalisation and time-ordered
// identifier generation.
package utils
