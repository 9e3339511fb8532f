// Package gallery defines the content items the layout engine arranges.
//
// An [Item] is a photograph with known pixel dimensions and an editorial
// rating. The engine never loads image data; width and height exist only to
// derive the aspect ratio, and the rating drives pattern selection. Items are
// supplied by an external listing collaborator (see pkg/source/manifest) and
// are read-only to the rest of the system.
package gallery
