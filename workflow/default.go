package workflow

// The functions below resolve the GITHUB_* variables on every call.

// SetOutput appends "key=value" to $GITHUB_OUTPUT.
func SetOutput(key string, value any) error {
	return Default().SetOutput(key, value)
}

// SetEnv appends "key=value" to $GITHUB_ENV.
func SetEnv(key string, value any) error {
	return Default().SetEnv(key, value)
}

// SetOutputs appends args to $GITHUB_OUTPUT.
func SetOutputs(args Args) error {
	return Default().Set(ChannelOutput, args)
}

// SetEnvs appends args to $GITHUB_ENV.
func SetEnvs(args Args) error {
	return Default().Set(ChannelEnv, args)
}

// AddPath appends path to $GITHUB_PATH.
func AddPath(path string) error {
	return Default().AddPath(path)
}

// Summary appends content to $GITHUB_STEP_SUMMARY.
func Summary(content any) error {
	return Default().Summary(content)
}
