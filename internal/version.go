package internal

// Version is the current articletrans version
const Version = "0.2.0"
