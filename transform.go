package rtlfix

// A Transform rewrites a text fragment. The segment-and-reverse
// pipeline of package runs is the canonical implementation; tag
// processing and file renaming both plug Transforms in, and tests
// substitute their own.
type Transform func(string) string
