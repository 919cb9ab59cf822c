package logger

type NilLogger struct{}

func (n NilLogger) Notify(format string, v ...interface{}) {
	return
}

func (n NilLogger) Debug(format string, v ...interface{}) {
	return
}

func (n NilLogger) Warn(format string, v ...interface{}) {
	return
}

func (n NilLogger) Error(format string, v ...interface{}) {
	return
}

func (n NilLogger) Fatal(format string, v ...interface{}) {
	return
}
