package internal

// Version is the silabario release version
var Version = "0.3.0"
