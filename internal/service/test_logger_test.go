package service

// Mock logger used by service package tests.
type MockServiceLogger struct{}

func (l *MockServiceLogger) Info(msg string, fields ...interface{})             {}
func (l *MockServiceLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *MockServiceLogger) Debug(msg string, fields ...interface{})            {}
func (l *MockServiceLogger) Warn(msg string, fields ...interface{})             {}

// recordingServiceLogger keeps the fields of each Info message by message.
type recordingServiceLogger struct {
	MockServiceLogger
	info map[string]map[string]interface{}
}

func (l *recordingServiceLogger) Info(msg string, fields ...interface{}) {
	if l.info == nil {
		l.info = make(map[string]map[string]interface{})
	}
	entry := make(map[string]interface{}, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		if key, ok := fields[i].(string); ok {
			entry[key] = fields[i+1]
		}
	}
	l.info[msg] = entry
}
