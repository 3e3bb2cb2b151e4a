package arrange

// Version is the arrange release version.
const Version = "0.1.0"
