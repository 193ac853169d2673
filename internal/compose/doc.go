// Package compose hands a finished message to the operating system.
//
// URI builds the sms: link understood by native messaging apps. Apple
// platforms expect the body after '&' while everything else expects '?':
//
//	sms:%2B15551234567&body=Hi%20Ann   (iOS, macOS)
//	sms:%2B15551234567?body=Hi%20Ann   (Android, Windows, Linux)
//
// The platform is resolved once at startup (ResolvePlatform) and passed in,
// which keeps URI a pure function.
//
// SystemLauncher opens the link with the desktop's URL handler and
// SystemClipboard copies the body for manual pasting.
package compose
