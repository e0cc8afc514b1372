package png

import "hash/crc32"

// CRC32 returns the reflected CRC-32 (polynomial 0xEDB88320) of b.
func CRC32(b []byte) uint32 {
	return crc32.ChecksumIEEE(b)
}

// chunkCRC computes the checksum PNG stores after a chunk: the CRC of the
// tag bytes followed by the data.
func chunkCRC(tag Tag, data []byte) uint32 {
	t := tag.Bytes()
	return crc32.Update(crc32.ChecksumIEEE(t[:]), crc32.IEEETable, data)
}
