package stacktrace

import "strconv"

const (
	stackSourceFileName     = "source"
	stackSourceLineName     = "line"
	stackSourceFunctionName = "func"
	stackSourceTypeName     = "type"
	stackSourceMethodName   = "method"
)

// Marshaler nicely formats the stack recorded on an error for logging.
// It returns nil when the error carries no stack.
func Marshaler(err error) any {
	return StackMarshaler(Extract(err))
}

// StackMarshaler formats a Stack for logging, nil in nil out.
func StackMarshaler(trace Stack) any {
	if trace == nil {
		return nil
	}

	out := make([]map[string]string, 0, len(trace))
	for _, frame := range trace {
		entry := map[string]string{
			stackSourceFileName:     frame.FilePath,
			stackSourceLineName:     strconv.Itoa(frame.Line),
			stackSourceFunctionName: frame.FunctionName,
		}
		if frame.TypeName != "" {
			entry[stackSourceTypeName] = frame.TypeName
			entry[stackSourceMethodName] = frame.MethodName
		}
		out = append(out, entry)
	}
	return out
}
