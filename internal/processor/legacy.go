package processor

const (
	moduleLegacy      = "legacy"
	commandReclaimLSK = "reclaimLSK"
)

func legacyEntries() []Entry {
	return []Entry{
		entry(moduleLegacy, commandReclaimLSK, markSender, markSender),
	}
}
