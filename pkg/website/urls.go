// package website contains references to external websites.
// Constants defined here can be used in the rest of Devlaunch, for example for log messages.
package website

const (
	NodeJSDownloadURL = "https://nodejs.org/"
	ViteServerOptions = "https://vite.dev/config/server-options#server-port"
)
