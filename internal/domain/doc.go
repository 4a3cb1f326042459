// Package domain defines the contracts shared across datakeep.
// It contains plain types and interfaces only; concrete implementations live
// in internal/crypto, internal/assets, internal/paths and internal/store.
package domain
