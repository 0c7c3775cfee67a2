/*
Package id3 reads and writes ID3v2 tags.

Supported versions

This library reads and writes v2.2, v2.3 and v2.4 tags. A tag is
always rendered in its own version, which is the version it was read
in or DefaultVersion for new tags, and can be changed with
SetVersion.

Frames and fields

A tag is an ordered list of frames. Every frame has a FrameID that does
not depend on the version, and a fixed list of fields laid out by that
id. Some fields only exist in some versions: a picture has an image
format in v2.2 and a MIME type from v2.3 on. Fields that do not exist
in the frame's version are neither parsed nor rendered, and asking for
them with Frame.Field yields an error matching ErrFieldNotFound.

Text fields carry their encoding. ISO-8859-1 and UTF-16 with a byte
order mark exist in every version, UTF-16BE and UTF-8 only in v2.4.

Version migration

When a tag is rendered in another version than its frames were read
in, the frames are migrated:

  - TYER, TDAT and TIME get replaced by TDRC, and back
  - TORY gets replaced by TDOR, and back
  - Pictures get their MIME type from the image format, and back
  - Encodings the version lacks fall back to UTF-16

Frames that have no id in the target version, such as TRDA in v2.4,
are kept in the tag but not written.

Damaged tags

Parsing never fails because of a single frame. A frame whose fields
cannot be parsed is dropped and counted by Tag.Skipped, and parsing
continues with the next frame. Diagnostics go to Logger, which
discards them unless SetLogger is called.

Accessing and manipulating frames

There are two ways to access frames: using the getter and setter
methods for common frames, such as Title and SetTitle, and working
directly with the frames through Find, Add and Frame.Field.
*/
package id3
