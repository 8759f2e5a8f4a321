/*
	Package linear implements a closed hashing (open addressing) hash table
	that resolves collisions with plain linear probing. It is intentionally
	simpler than robin hood hashing: an entry lives in the first free slot
	at or after its home bucket, and nothing is ever swapped on insert.
	The basic principal is:
	-----------------------
	1) Calculate the hash value of the key and its home index (hash mod capacity)
	2) Walk the table one slot at a time (wrapping around) until a free slot
	   or a slot holding an equal key is found
	3) Before inserting, grow the table to twice its capacity whenever it is
	   at least half full. Every live entry is re-inserted with the ordinary
	   walk, because the home index depends on the capacity
	4) On delete, free the slot and then evict and re-insert every entry in
	   the contiguous run of occupied slots that follows it. This closes the
	   hole left behind, so no lookup can stop early at it. No tombstones are
	   ever written and the table never shrinks
	More information about the deletion technique:
	01) https://en.wikipedia.org/wiki/Linear_probing#Deletion
	02) https://algs4.cs.princeton.edu/34hash/LinearProbingHashST.java.html
*/
package linear
