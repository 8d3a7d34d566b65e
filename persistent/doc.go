/*
Immutable persistent data structures can be “modified” cheaply, leaving the
original value unchanged: each operation producing a new incarnation shares
most of its memory with the value it was derived from. This package tree
holds the shared-ownership list types of this module.

Structural sharing needs a notion of joint ownership: a piece of node storage
stays alive as long as at least one list value can still reach it. The
sub-packages manage this with explicit ownership counts on nodes, released
one owner at a time.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
