// Package config handles cost-policy configuration loading and validation.
//
// Configuration is loaded from YAML and validated using struct tags. It is
// deliberately independent of network data: the time-band rules and transfer
// penalty are plain data that can be swapped without touching the search
// engine.
package config
