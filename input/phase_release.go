//go:build !inputdebug

package input

const phaseChecksDefault = false
