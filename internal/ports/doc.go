// Package ports holds the interfaces the layers meet at. Handlers call the
// draft service port; the application calls the admin action client port;
// the draft controller reports to the navigation, notice and translator
// ports, which the session layer and the i18n catalog implement.
package ports
