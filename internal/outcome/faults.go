package outcome

// NTSTATUS values Windows reports as process exit codes when a child
// dies from a hard fault. Kept platform-neutral so the classification
// table is testable everywhere.
const (
	// StatusAccessViolation is STATUS_ACCESS_VIOLATION.
	StatusAccessViolation uint32 = 0xC0000005

	// StatusIntegerDivideByZero is STATUS_INTEGER_DIVIDE_BY_ZERO.
	StatusIntegerDivideByZero uint32 = 0xC0000094
)

var faultNames = map[uint32]string{
	StatusAccessViolation:     "access violation",
	StatusIntegerDivideByZero: "integer divide by zero",
}

// LookupFault returns the symbolic name for a known fault exit code.
func LookupFault(code uint32) (string, bool) {
	name, ok := faultNames[code]
	return name, ok
}

// ClassifyExitCode maps a raw Windows exit code to an outcome. Known
// fault codes become PlatformFault; any other value, zero or not, is a
// normal exit (unclassified codes are not faults).
func ClassifyExitCode(code uint32) Outcome {
	if name, ok := LookupFault(code); ok {
		return PlatformFault(code, name)
	}
	return NormalExit(int(int32(code)))
}
