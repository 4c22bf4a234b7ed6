package mp3header

// For MPEG header format, see: http://www.mp3-tech.org/programmer/frame_header.html

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	mpegFlagFrameSync    = 0b11111111_11100000_00000000_00000000
	mpegFlagAudioVersion = 0b00000000_00011000_00000000_00000000
	mpegFlagLayerDesc    = 0b00000000_00000110_00000000_00000000
	mpegFlagBitRate      = 0b00000000_00000000_11110000_00000000
	mpegFlagSampleFreq   = 0b00000000_00000000_00001100_00000000
)

// Audio version IDs; 0b01 is reserved.
const (
	Version2_5 AudioVersionValue = 0b00
	Version2   AudioVersionValue = 0b10
	Version1   AudioVersionValue = 0b11
)

// Layer descriptions; 0b00 is reserved.
const (
	Layer3 LayerValue = 0b01
	Layer2 LayerValue = 0b10
	Layer1 LayerValue = 0b11
)

type AudioVersionValue uint32
type LayerValue uint32

// MP3Header is the part of an MPEG audio frame header needed to turn a byte
// count into play time.
type MP3Header struct {
	AudioVersion AudioVersionValue
	Layer        LayerValue
	BitRate      int // kbps
	SampleFreq   int // Hz
}

func (v AudioVersionValue) String() string {
	switch v {
	case Version1:
		return "1"
	case Version2:
		return "2"
	case Version2_5:
		return "2.5"
	}
	return "?"
}

func (l LayerValue) String() string {
	switch l {
	case Layer1:
		return "I"
	case Layer2:
		return "II"
	case Layer3:
		return "III"
	}
	return "?"
}

func (h MP3Header) String() string {
	return fmt.Sprintf("MPEG-%s Layer %s, %d kbps, %dHz", h.AudioVersion, h.Layer, h.BitRate, h.SampleFreq)
}

type bitRateArray [16]int
type bitRateLayerDict map[LayerValue]bitRateArray

// 0 means free format
// -1 means bad bit rate
var bitRateTopDict = map[AudioVersionValue]bitRateLayerDict{
	Version1: {
		Layer1: {0, 32, 64, 96, 128, 160, 192, 224, 256, 288, 320, 352, 384, 416, 448, -1},
		Layer2: {0, 32, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 384, -1},
		Layer3: {0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, -1},
	},
	// Version2 is for Version2_5 too
	Version2: {
		Layer1: {0, 32, 48, 56, 64, 80, 96, 112, 128, 144, 160, 176, 192, 224, 256, -1},
		Layer2: {0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, -1},
		Layer3: {0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, -1},
	},
}

var sampleRateDict = map[AudioVersionValue][4]int{
	Version1:   {44100, 48000, 32000, -1},
	Version2:   {22050, 24000, 16000, -1},
	Version2_5: {11025, 12000, 8000, -1},
}

func getBitRate(version AudioVersionValue, layer LayerValue, bitRateIndex int) (int, error) {
	if version == Version2_5 {
		version = Version2
	}

	layerDict, ok := bitRateTopDict[version]
	if !ok {
		return -1, errors.Errorf("invalid version: %02b", version)
	}

	bitRateLookup, ok := layerDict[layer]
	if !ok {
		return -1, errors.Errorf("invalid layer: %02b", layer)
	}

	if bitRateIndex < 0 || bitRateIndex >= len(bitRateLookup) {
		return -1, errors.Errorf("invalid bitRateIndex: %04b", bitRateIndex)
	}

	bitRate := bitRateLookup[bitRateIndex]
	if bitRate <= 0 {
		return -1, errors.Errorf("unusable bitRateIndex: %04b", bitRateIndex)
	}

	return bitRate, nil
}

func getSampleFreq(version AudioVersionValue, sampleRateIndex int) (int, error) {
	sampleRateLookup, ok := sampleRateDict[version]
	if !ok {
		return -1, errors.Errorf("invalid version: %02b", version)
	}

	if sampleRateIndex < 0 || sampleRateIndex >= len(sampleRateLookup) {
		return -1, errors.Errorf("invalid sampleRateIndex: %02b", sampleRateIndex)
	}

	sampleFreq := sampleRateLookup[sampleRateIndex]
	if sampleFreq < 0 {
		return -1, errors.Errorf("reserved sampleRateIndex: %02b", sampleRateIndex)
	}

	return sampleFreq, nil
}

// ParseMP3Header parses MP3 header by reading a 4-byte data. Free format
// and reserved bit rates are reported as errors since they carry no usable
// rate.
func ParseMP3Header(headerBits uint32) (header MP3Header, err error) {
	header = MP3Header{
		AudioVersion: 0xF,
		Layer:        0xF,
		BitRate:      -1,
		SampleFreq:   -1,
	}

	if headerBits&mpegFlagFrameSync != mpegFlagFrameSync {
		err = errors.Errorf("MP3 frame sync not found (expecting %X, but found %X)", mpegFlagFrameSync, headerBits)
		return
	}

	header.AudioVersion = AudioVersionValue((headerBits & mpegFlagAudioVersion) >> 19)
	header.Layer = LayerValue((headerBits & mpegFlagLayerDesc) >> 17)
	bitRateIndex := int((headerBits & mpegFlagBitRate) >> 12)
	sampleFreqIndex := int((headerBits & mpegFlagSampleFreq) >> 10)

	bitRate, err := getBitRate(header.AudioVersion, header.Layer, bitRateIndex)
	if err != nil {
		return
	}

	header.BitRate = bitRate

	sampleFreq, err := getSampleFreq(header.AudioVersion, sampleFreqIndex)
	if err != nil {
		return
	}

	header.SampleFreq = sampleFreq

	return
}
