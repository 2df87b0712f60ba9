package util

// Envelope is the JSON object every handler responds with.
type Envelope map[string]any

func Error(message string) Envelope {
	return Envelope{"error": message}
}

// Message pairs a human readable message with one payload entry, as used by
// delete responses.
func Message(message, key string, value any) Envelope {
	return Envelope{"message": message, key: value}
}
