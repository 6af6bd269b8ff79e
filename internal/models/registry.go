package models

// AssetInfo describes one downloadable model file.
type AssetInfo struct {
	ID          string
	Name        string
	FileName    string
	SizeBytes   int64
	DownloadURL string
}

// Registry lists every model asset the service consumes. The two face
// models ship with OpenCV's model zoo; the Kokoro TTS package comes from
// the Hugging Face hub and is fetched on first use.
var Registry = []AssetInfo{
	{
		ID:          "yunet",
		Name:        "YuNet face detection",
		FileName:    "face_detection_yunet_2023mar.onnx",
		SizeBytes:   232_589,
		DownloadURL: "https://github.com/opencv/opencv_zoo/raw/main/models/face_detection_yunet/face_detection_yunet_2023mar.onnx",
	},
	{
		ID:          "sface",
		Name:        "SFace face recognition",
		FileName:    "face_recognition_sface_2021dec.onnx",
		SizeBytes:   38_696_575,
		DownloadURL: "https://github.com/opencv/opencv_zoo/raw/main/models/face_recognition_sface/face_recognition_sface_2021dec.onnx",
	},
	{
		// The full distribution: model.onnx, voices.bin, tokens.txt and the
		// espeak-ng-data tree sherpa-onnx needs for phonemization. The loose
		// hub files are not enough to construct a working pipeline.
		ID:          "kokoro",
		Name:        "Kokoro TTS package",
		FileName:    "kokoro-multi-lang-v1_0.tar.bz2",
		SizeBytes:   346_443_038,
		DownloadURL: "https://github.com/k2-fsa/sherpa-onnx/releases/download/tts-models/kokoro-multi-lang-v1_0.tar.bz2",
	},
}

// Lookup returns the registry entry for an asset id.
func Lookup(id string) (AssetInfo, bool) {
	for _, a := range Registry {
		if a.ID == id {
			return a, true
		}
	}
	return AssetInfo{}, false
}
