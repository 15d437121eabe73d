package utils

const DefaultBufferSize = 1024 * 256 // 256KB read buffer, one chunk in memory at a time
const ToolUserAgent = "dust-cli"

// DefaultHTTPClient is used by tasks built without an explicit client.
var DefaultHTTPClient HTTPDoer = NewDustHTTPClient(HTTPClientConfig{})
