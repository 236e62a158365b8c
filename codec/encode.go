package codec

import (
	"github.com/danmuck/umpwire/message"
	"github.com/danmuck/umpwire/ump"
)

// Encode serializes m into its fixed-length word buffer. Constructors bound
// every field, so Encode is total; reserved bits encode as zero.
func Encode(m message.Message) []uint32 {
	switch v := m.(type) {
	case message.Utility:
		return []uint32{head(v.Type(), v.Group()) |
			uint32(v.Status())<<20 |
			uint32(v.Value())}

	case message.System:
		return []uint32{head(v.Type(), v.Group()) |
			uint32(v.Status())<<16 |
			uint32(v.Data1())<<8 |
			uint32(v.Data2())}

	case message.Midi1ChannelVoice:
		return []uint32{head(v.Type(), v.Group()) |
			uint32(v.Status())<<20 |
			uint32(v.Channel())<<16 |
			uint32(v.Data1())<<8 |
			uint32(v.Data2())}

	case message.Data64:
		b := v.Bytes()
		return []uint32{
			head(v.Type(), v.Group()) |
				uint32(v.Format())<<20 |
				uint32(v.Count())<<16 |
				uint32(b[0])<<8 |
				uint32(b[1]),
			uint32(b[2])<<24 | uint32(b[3])<<16 | uint32(b[4])<<8 | uint32(b[5]),
		}

	case message.Midi2ChannelVoice:
		return []uint32{
			head(v.Type(), v.Group()) |
				uint32(v.Status())<<20 |
				uint32(v.Channel())<<16 |
				uint32(v.Index1())<<8 |
				uint32(v.Index2()),
			v.Data(),
		}

	case message.Data128:
		b := v.Bytes()
		return []uint32{
			head(v.Type(), v.Group()) |
				uint32(v.Format())<<20 |
				uint32(v.Count())<<16 |
				uint32(v.StreamID())<<8 |
				uint32(b[0]),
			uint32(b[1])<<24 | uint32(b[2])<<16 | uint32(b[3])<<8 | uint32(b[4]),
			uint32(b[5])<<24 | uint32(b[6])<<16 | uint32(b[7])<<8 | uint32(b[8]),
			uint32(b[9])<<24 | uint32(b[10])<<16 | uint32(b[11])<<8 | uint32(b[12]),
		}

	case message.Flex:
		data := v.Data()
		return []uint32{
			head(v.Type(), v.Group()) |
				uint32(v.Format())<<22 |
				uint32(v.Address())<<20 |
				uint32(v.Channel())<<16 |
				uint32(v.Bank())<<8 |
				uint32(v.Status()),
			data[0], data[1], data[2],
		}

	case message.Stream:
		data := v.Data()
		return []uint32{
			uint32(ump.TypeStream)<<28 |
				uint32(v.Format())<<26 |
				uint32(v.Status())<<16 |
				uint32(v.Data0()),
			data[0], data[1], data[2],
		}
	}

	// The message set is sealed; no other implementation exists.
	return nil
}

func head(t ump.Type, group uint8) uint32 {
	return uint32(t)<<28 | uint32(group&0x0F)<<24
}
