package audio

import (
	"audio-joiner/src/lib/cerr"
	"math"
)

// SpeedUp changes the playback rate of a clip by ratio, the way playing a
// record faster does: the clip gets shorter and its pitch rises by the same
// factor. The output keeps the input's sample rate; frames are resampled
// with linear interpolation between neighbouring source frames.
func SpeedUp(clip Clip, ratio float64) (Clip, error) {
	if ratio <= 0 || math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return Clip{}, cerr.Field("ratio", ratio).Error("Speed ratio must be a positive number")
	}

	if err := clip.Format.Validate(); err != nil {
		return Clip{}, err
	}

	inFrames := clip.Frames()
	outFrames := SpedUpFrames(inFrames, ratio)
	channels := clip.Channels

	samples := make([]int16, outFrames*channels)
	for i := 0; i < outFrames; i++ {
		pos := float64(i) * ratio
		left := int(pos)
		if left >= inFrames {
			left = inFrames - 1
		}
		right := left + 1
		if right >= inFrames {
			right = inFrames - 1
		}
		frac := pos - float64(left)

		for ch := 0; ch < channels; ch++ {
			a := float64(clip.Samples[left*channels+ch])
			b := float64(clip.Samples[right*channels+ch])
			samples[i*channels+ch] = clampSample(a + (b-a)*frac)
		}
	}

	return NewClip(clip.Format, samples)
}

// SpedUpFrames is the frame count SpeedUp produces for a clip of the given length
func SpedUpFrames(frames int, ratio float64) int {
	if frames <= 0 {
		return 0
	}
	return int(math.Round(float64(frames) / ratio))
}

func clampSample(v float64) int16 {
	v = math.Round(v)
	switch {
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	default:
		return int16(v)
	}
}
