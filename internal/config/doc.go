// Package config provides configuration loading, merging, and validation
// for the Rajaongkir client.
//
// Configuration is assembled from the following sources, in priority order
// (earlier sources win; later ones only fill fields left empty):
//  1. Environment variables
//  2. JSON config file (path taken from the CONFIG variable)
//
// The main entry point is [GetClientConfig].
package config
