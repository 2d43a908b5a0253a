// Package schema loads schema documents into a generic node tree.
//
// The tree keeps every element of the document with its local tag name,
// its attributes in document order and its child elements. Tags are
// classified into the small vocabulary the IR walker understands; anything
// else is TagOther and is treated as a transparent container.
package schema
